package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fwojciec/study"
	studyhttp "github.com/fwojciec/study/http"
	studyjson "github.com/fwojciec/study/json"
)

// newClient builds a backend client carrying the saved session, if any.
// A 401 from the backend removes the saved session.
func (a *app) newClient() (*studyhttp.Client, error) {
	baseURL := studyhttp.ResolveBaseURL(a.cfg.APIURL, a.hostname)
	if baseURL == "" {
		return nil, errors.New("api_url is not configured (use --api-url or STUDY_API_URL)")
	}

	opts := []studyhttp.Option{
		studyhttp.WithHTTPClient(&http.Client{Timeout: a.cfg.Timeout}),
		studyhttp.WithLogger(a.logger),
		studyhttp.WithOnUnauthorized(func() {
			if err := studyjson.DeleteCredentials(a.cfg.CredentialsFile); err != nil {
				a.logger.Warn("remove expired session", "error", err)
				return
			}
			fmt.Fprintln(a.stderr, "Session expired. Run study login to sign in again.")
		}),
	}

	creds, err := studyjson.LoadCredentials(a.cfg.CredentialsFile)
	switch {
	case err == nil:
		opts = append(opts, studyhttp.WithToken(creds.AccessToken))
	case errors.Is(err, study.ErrNotAuthenticated):
		a.logger.Debug("no saved session", "path", a.cfg.CredentialsFile)
	default:
		return nil, err
	}
	a.logger.Debug("backend", "url", baseURL)
	return studyhttp.New(baseURL, opts...), nil
}
