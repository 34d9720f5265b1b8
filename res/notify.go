package res

const (
	COURSE     = "course"
	ENROLLMENT = "enrollment"
)

type NotifyLMS struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Type   string `json:"type"`
	IDUser string `json:"id_user,omitempty"`
}
