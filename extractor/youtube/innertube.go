package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/KRTirtho/NewPipeCLI/extractor"
	"github.com/KRTirtho/NewPipeCLI/log"
)

func (s *Service) clientContext() map[string]any {
	return map[string]any{
		"client": map[string]any{
			"hl":            interfaceLanguage,
			"gl":            s.options.Country,
			"clientName":    webClientName,
			"clientVersion": webClientVersion,
		},
	}
}

// innertube posts body to a youtubei/v1 endpoint and decodes the JSON answer.
func (s *Service) innertube(ctx context.Context, endpoint string, body map[string]any) (map[string]any, error) {
	body["context"] = s.clientContext()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req := extractor.NewRequest(http.MethodPost, innertubeURL+endpoint+"?prettyPrint=false", payload)
	req.Headers.Set("Content-Type", "application/json")
	req.Headers.Set("Origin", BaseURL)
	req.Headers.Set("X-YouTube-Client-Name", webClientID)
	req.Headers.Set("X-YouTube-Client-Version", webClientVersion)

	resp, err := s.downloader.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		log.Warnf("innertube %s: %d %s", endpoint, resp.StatusCode, resp.StatusMessage)
		return nil, fmt.Errorf("%s request failed: %d %s", endpoint, resp.StatusCode, resp.StatusMessage)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &decoded); err != nil {
		return nil, &extractor.ParsingError{What: endpoint + " response", Err: err}
	}

	return decoded, nil
}
