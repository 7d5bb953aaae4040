package repoargs

type CreateUser struct {
	Email        string
	Password     string
	CollectiveID int64
}
