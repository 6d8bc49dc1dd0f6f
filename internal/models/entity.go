package models

// Entity is the constraint shared by every persisted model. The generic
// repository operations are bound to it instead of duck-typing across the
// three model structs.
type Entity interface {
	Question | Category | User

	GetID() uint
	TableName() string
}
