package entity

// All lists the models managed by AutoMigrate, parents first.
func All() []any {
	return []any{
		&Faculty{},
		&Student{},
		&Avatar{},
	}
}
