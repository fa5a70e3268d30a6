package store

import "notewell/internal/logger"

// Repositories bundles all repository implementations behind one constructor
// so the service layer receives a single dependency.
type Repositories struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewRepositories wires every repository to the shared database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}
}
