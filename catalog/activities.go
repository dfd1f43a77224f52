package catalog

// SpendingCategories lists the categories accepted for spending logs. The
// server does not remap unknown categories; callers pick from this list.
func SpendingCategories() []string {
	return []string{"Food", "Transport", "Entertainment", "Shopping", "Bills", "Health", "Other"}
}

// ExerciseTypes lists the exercise types offered to clients.
func ExerciseTypes() []string {
	return []string{"Running", "Walking", "Cycling", "Swimming", "Gym/Weights", "Yoga", "HIIT", "Sports", "Dancing", "Other"}
}
