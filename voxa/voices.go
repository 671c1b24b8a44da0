package voxa

import (
	"context"
	"net/http"
	"net/url"
)

// VoicesService lists and inspects the voices available to the account.
type VoicesService struct {
	client *Client
}

// Voice is a synthesis voice.
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Gender      string `json:"gender"`
	PreviewURL  string `json:"preview_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// VoiceListParams filter the voice list. Empty fields are omitted from the
// query string.
type VoiceListParams struct {
	Language string
	Gender   string
}

// List returns the voices matching params.
func (s *VoicesService) List(ctx context.Context, params VoiceListParams) ([]Voice, error) {
	var out struct {
		Voices []Voice `json:"voices"`
	}
	err := s.client.unaryInto(ctx, &request{
		op:     "voices.list",
		method: http.MethodGet,
		path:   "/v1/voices",
		query: map[string]string{
			"language": params.Language,
			"gender":   params.Gender,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Voices, nil
}

// Get fetches one voice by ID.
func (s *VoicesService) Get(ctx context.Context, id string) (*Voice, error) {
	var v Voice
	err := s.client.unaryInto(ctx, &request{
		op:     "voices.get",
		method: http.MethodGet,
		path:   "/v1/voices/" + url.PathEscape(id),
	}, &v)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
