package models

// All returns one value of every persisted model, in migration order.
func All() []any {
	return []any{
		&NewsItem{},
		&Suggestion{},
		&ServiceCategory{},
		&ServiceRecord{},
		&ServiceDocument{},
		&Official{},
		&DepartmentRecord{},
		&DepartmentStaff{},
		&DepartmentAct{},
		&Stat{},
		&DownloadItem{},
		&Tender{},
	}
}
