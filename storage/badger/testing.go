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


package badger

import "github.com/doelenia/ausna-sub004/storage"

// Repositories bundles all repositories over a shared backend.
type Repositories struct {
	Notes     storage.NoteRepository
	Entities  storage.EntityRepository
	Knowledge storage.KnowledgeRepository
	Interests storage.InterestRepository
	Backend   *Backend
}

// Close closes all repositories and the backend.
func (r *Repositories) Close() error {
	r.Notes.Close()
	r.Entities.Close()
	r.Knowledge.Close()
	r.Interests.Close()
	return r.Backend.Close()
}

// NewRepositories creates all repositories over the given backend.
func NewRepositories(backend *Backend) (*Repositories, error) {
	notes, err := NewNoteRepository(backend)
	if err != nil {
		return nil, err
	}

	entities, err := NewEntityRepository(backend)
	if err != nil {
		notes.Close()
		return nil, err
	}

	knowledge, err := NewKnowledgeRepository(backend)
	if err != nil {
		notes.Close()
		entities.Close()
		return nil, err
	}

	interests, err := NewInterestRepository(backend)
	if err != nil {
		notes.Close()
		entities.Close()
		knowledge.Close()
		return nil, err
	}

	return &Repositories{
		Notes:     notes,
		Entities:  entities,
		Knowledge: knowledge,
		Interests: interests,
		Backend:   backend,
	}, nil
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must close the returned bundle when done.
func NewMemoryRepositories() (*Repositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	repos, err := NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return repos, nil
}
