package request

type IssueTokenRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}
