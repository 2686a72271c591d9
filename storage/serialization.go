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


package storage

import (
	"github.com/doelenia/ausna-sub004/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalNote serializes a Note to bytes.
func MarshalNote(note *core.Note) []byte {
	buf := make([]byte, core.NoteMUS.Size(*note))
	core.NoteMUS.Marshal(*note, buf)
	return buf
}

// UnmarshalNote deserializes a Note from bytes.
func UnmarshalNote(data []byte) (*core.Note, error) {
	note, _, err := core.NoteMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// MarshalKnowledgeRecord serializes a KnowledgeRecord to bytes.
func MarshalKnowledgeRecord(record *core.KnowledgeRecord) []byte {
	buf := make([]byte, core.KnowledgeRecordMUS.Size(*record))
	core.KnowledgeRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalKnowledgeRecord deserializes a KnowledgeRecord from bytes.
func UnmarshalKnowledgeRecord(data []byte) (*core.KnowledgeRecord, error) {
	record, _, err := core.KnowledgeRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalEntity serializes an Entity to bytes.
func MarshalEntity(entity *core.Entity) []byte {
	buf := make([]byte, core.EntityMUS.Size(*entity))
	core.EntityMUS.Marshal(*entity, buf)
	return buf
}

// UnmarshalEntity deserializes an Entity from bytes.
func UnmarshalEntity(data []byte) (*core.Entity, error) {
	entity, _, err := core.EntityMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// MarshalInterestScore serializes an InterestScore to bytes.
func MarshalInterestScore(score *core.InterestScore) []byte {
	buf := make([]byte, core.InterestScoreMUS.Size(*score))
	core.InterestScoreMUS.Marshal(*score, buf)
	return buf
}

// UnmarshalInterestScore deserializes an InterestScore from bytes.
func UnmarshalInterestScore(data []byte) (*core.InterestScore, error) {
	score, _, err := core.InterestScoreMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &score, nil
}
