package entity

// Camera is a managed camera device reachable over its HTTP control API.
type Camera struct {
	ID       string
	Name     string
	Host     string
	HTTPPort int
	Username string
	Password string
	Channel  int
}
