package repositories

import (
	"github.com/yigit/eamcet-predictor/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository CollegeStore
}

// NewRepositories initializes all repositories on a SQL database
func NewRepositories(database db.Database) *Repositories {
	return &Repositories{
		CollegeRepository: NewSQLCollegeRepository(database),
	}
}

// NewMemoryRepositories initializes in-process repositories
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		CollegeRepository: NewMemoryCollegeRepository(),
	}
}
