package analysis

import (
	"errors"
	"net/http"
	"strconv"

	"textlens/internal/domain/entity"
	"textlens/internal/handler/http/respond"
	analyzeUC "textlens/internal/usecase/analyze"
)

// respondError maps analysis errors onto HTTP responses.
// Validation problems and anything the client can fix (bad URLs, private
// addresses, unfetchable pages, malformed feeds) answer 400; provider
// failures answer 400 with a stable user message while the detail goes to
// the log; everything else is an internal error.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *entity.ValidationError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, analyzeUC.ErrInvalidURL),
		errors.Is(err, analyzeUC.ErrPrivateIP):
		respond.SafeError(w, http.StatusBadRequest, err)

	case errors.Is(err, analyzeUC.ErrBodyTooLarge),
		errors.Is(err, analyzeUC.ErrTooManyRedirects),
		errors.Is(err, analyzeUC.ErrExtractionFailed),
		errors.Is(err, analyzeUC.ErrTimeout):
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "failed to fetch webpage content", err))

	case errors.Is(err, analyzeUC.ErrInvalidFeedFormat):
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "url does not point to a valid RSS or Atom feed", err))

	case errors.Is(err, analyzeUC.ErrFeedFetchFailed):
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "failed to fetch feed", err))

	case errors.Is(err, analyzeUC.ErrSentimentFailed):
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "sentiment analysis failed", err))

	case errors.Is(err, analyzeUC.ErrEntityExtractionFailed):
		respond.SafeErrorV2(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "entity extraction failed", err))

	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

// requireURLParam extracts the url query parameter, answering 400 when absent.
// Returns false when the response has already been written.
func requireURLParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	url := r.URL.Query().Get("url")
	if url == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("url parameter is required"))
		return "", false
	}
	return url, true
}

// intQueryParam parses an integer query parameter with a default.
// Returns an error for values that are present but not integers.
func intQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &entity.ValidationError{Field: name, Message: "must be an integer"}
	}
	return v, nil
}

// floatQueryParam parses a float query parameter with a default.
func floatQueryParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &entity.ValidationError{Field: name, Message: "must be a number"}
	}
	return v, nil
}
