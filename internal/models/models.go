package models

// Post lives only in process memory; it is never persisted.
type Post struct {
	ID         int
	Author     string
	Title      string
	Content    string
	DatePosted string
}

type User struct {
	ID        int64
	Username  string
	Email     string
	ImageFile string
}

// ImagePath resolves the avatar URL, falling back to the default picture
// when the user never uploaded one.
func (u User) ImagePath() string {
	if u.ImageFile != "" {
		return "/media/profile_pics/" + u.ImageFile
	}
	return "/static/profile_pics/default.jpg"
}
