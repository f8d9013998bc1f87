package protocol

// messages coming in from the browser.

type Submit struct {
	Code string `json:"code"` // 4-5 digits, seat then score
}

type Clear struct{}
