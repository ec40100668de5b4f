package yandex

type yaResponse struct {
	Result struct {
		Alternatives []struct {
			Message message `json:"message"`
			Status  string  `json:"status"`
		} `json:"alternatives"`
	} `json:"result"`
}

type yaError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
