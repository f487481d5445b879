package model

// All lists every persisted model in dependency order, for schema migration.
func All() []any {
	return []any{
		&User{},
		&Project{},
		&ProjectMember{},
		&Tag{},
		&Task{},
		&TaskTag{},
		&Comment{},
	}
}
