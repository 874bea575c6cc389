package repository

type ListOptions struct {
	UserID string
	Level  string
	Limit  int
}
