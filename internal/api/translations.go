package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/awesomebible/helloao-go/internal/types"
)

const msgTranslationsFailed = "Failed to load translations."

// ListTranslations retrieves all available translations. The upstream array
// is decoded as-is; no field normalization is applied here.
func ListTranslations(ctx context.Context, httpClient HTTPClient, baseURL string, logger zerolog.Logger) ([]types.Translation, error) {
	requestsTotal.WithLabelValues(opListTranslations).Inc()

	url := fmt.Sprintf("%s/available_translations.json", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, loadFailure(logger, opListTranslations, msgTranslationsFailed, err)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, loadFailure(logger, opListTranslations, msgTranslationsFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, loadFailure(logger, opListTranslations, msgTranslationsFailed,
			fmt.Errorf("list translations: status %d", resp.StatusCode))
	}

	var out []types.Translation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, loadFailure(logger, opListTranslations, msgTranslationsFailed, err)
	}
	return out, nil
}
