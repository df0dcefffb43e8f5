package model

import "time"

// Task represents a single item in the task manager.
type Task struct {
	ID          uint `gorm:"primaryKey"`
	Title       string
	Description string
	Priority    Priority `gorm:"index"`
	Category    Category `gorm:"index"`
	// DueDate keeps the user's dd.mm.yyyy input verbatim; it is parsed on
	// demand, see ParseDueDate.
	DueDate     string
	IsCompleted bool `gorm:"default:false"`
	CreatedAt   time.Time
}
