package entity

const (
	DefaultPushTitle = "Test Title"
	DefaultPushBody  = "Test Body"
)

type PushRequest struct {
	FCMToken string `json:"fcmToken"`
	UserID   *int64 `json:"userId"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

type PushMessage struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

type PushResult struct {
	Response string `json:"response"`
}
