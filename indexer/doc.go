// Copyright 2025 Doelenia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package indexer runs the per-note knowledge derivation pipeline.
//
// A run moves a note through Pending, Processing and finally Completed or
// Failed. It resolves references (vision descriptions for images, metadata
// rendering for URLs), assembles the canonical compound text, extracts a
// summary plus atomic knowledge statements and named entities, embeds the
// summary and compound text, writes deduplicated topics and intentions to
// the knowledge graph, replaces the note's knowledge records wholesale,
// and bumps the author's interest scores.
//
// Failures split into two classes. Fatal failures (note fetch, extraction,
// embedding, knowledge insert, final note update) flip the note to Failed
// and end the run. Degrading failures (a single reference, ask-topic
// mining, a single entity, interest tracking) are logged and the run
// continues with what resolved. Reruns are idempotent: prior knowledge
// records for the note are deleted before anything is written.
//
// Usage:
//
//	ix, err := indexer.NewIndexer(notes, entities, knowledge, interests, provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ix.Release()
//
//	// fire-and-forget
//	ix.QueueIndexNote(noteID)
//
//	// or synchronous
//	err = ix.IndexNote(ctx, noteID)
package indexer
