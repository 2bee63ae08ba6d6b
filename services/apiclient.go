package services

import (
	"net/http"
	"time"

	"github.com/DavidK276/ojs-dashboard/config"
)

var apiClient = &http.Client{Timeout: 10 * time.Second}

// CheckAPIKey validates an API key by requesting a single user from the OJS
// REST API. It returns the upstream status code; a transport failure returns
// an error and must not be treated as an invalid key.
func CheckAPIKey(apiKey string) (int, error) {
	req, err := http.NewRequest(http.MethodGet, config.APIURL+"users?count=1", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := apiClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
