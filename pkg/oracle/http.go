package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/mkorrel/libraryrecon/pkg/engineerr"
)

// HTTPClient is the concrete Oracle backed by the three logical endpoints
// select/explore/guess over request/response HTTP, retried with exponential
// backoff on transport-level failures only: a structured rejection (the
// oracle understood the request and declined it) is never retried.
type HTTPClient struct {
	baseURL string
	teamID  string
	http    *http.Client
}

// Config configures an HTTPClient.
type Config struct {
	BaseURL string
	TeamID  string
	Timeout time.Duration // zero means http.Client's own default
}

// NewHTTPClient builds a client against cfg.BaseURL, attaching cfg.TeamID
// to every request.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("oracle: BaseURL is required")
	}
	if cfg.TeamID == "" {
		return nil, fmt.Errorf("oracle: TeamID is required")
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		teamID:  cfg.TeamID,
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type selectRequest struct {
	ID          string `json:"id"`
	ProblemName string `json:"problemName"`
}

type selectResponse struct {
	ProblemName string `json:"problemName"`
}

func (c *HTTPClient) Select(ctx context.Context, name string) (SelectResult, error) {
	var resp selectResponse
	if err := c.call(ctx, "select", selectRequest{ID: c.teamID, ProblemName: name}, &resp); err != nil {
		return SelectResult{}, err
	}
	return SelectResult{Name: resp.ProblemName}, nil
}

type exploreRequest struct {
	ID    string   `json:"id"`
	Plans []string `json:"plans"`
}

type exploreResponse struct {
	Results    [][]int `json:"results"`
	QueryCount int     `json:"queryCount"`
}

func (c *HTTPClient) Explore(ctx context.Context, plans []string) (ExploreResult, error) {
	var resp exploreResponse
	if err := c.call(ctx, "explore", exploreRequest{ID: c.teamID, Plans: plans}, &resp); err != nil {
		return ExploreResult{}, err
	}
	return ExploreResult{PerPlanLabels: resp.Results, QueryCount: resp.QueryCount}, nil
}

type wireConnection struct {
	From wireEndpoint `json:"from"`
	To   wireEndpoint `json:"to"`
}

type wireEndpoint struct {
	Room int `json:"room"`
	Door int `json:"door"`
}

type guessRequest struct {
	ID  string         `json:"id"`
	Map wireMapRequest `json:"map"`
}

type wireMapRequest struct {
	Rooms        []int            `json:"rooms"`
	StartingRoom int              `json:"startingRoom"`
	Connections  []wireConnection `json:"connections"`
}

type guessResponse struct {
	Correct bool `json:"correct"`
}

func (c *HTTPClient) Guess(ctx context.Context, guess MapDescription) (GuessResult, error) {
	conns := make([]wireConnection, len(guess.Connections))
	for i, conn := range guess.Connections {
		conns[i] = wireConnection{
			From: wireEndpoint{Room: conn.Room, Door: conn.Door},
			To:   wireEndpoint{Room: conn.Room2, Door: conn.Door2},
		}
	}

	req := guessRequest{
		ID: c.teamID,
		Map: wireMapRequest{
			Rooms:        guess.Labels,
			StartingRoom: guess.StartingRoom,
			Connections:  conns,
		},
	}

	var resp guessResponse
	if err := c.call(ctx, "guess", req, &resp); err != nil {
		return GuessResult{}, err
	}
	return GuessResult{Correct: resp.Correct}, nil
}

// call posts body as JSON to op and decodes the response into out, retrying
// transient transport failures (network errors, 5xx) with exponential
// backoff. A 4xx response is a structured rejection and is never retried.
func (c *HTTPClient) call(ctx context.Context, op string, body, out any) error {
	return retry.Do(
		func() error {
			payload, err := json.Marshal(body)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("oracle: encoding %s request: %w", op, err))
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, bytes.NewReader(payload))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("oracle: building %s request: %w", op, err))
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := c.http.Do(req)
			if err != nil {
				return &engineerr.TransportError{Op: op, Err: err}
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return retry.Unrecoverable(&engineerr.ServerRejectError{Op: op, Message: fmt.Sprintf("status %d", resp.StatusCode)})
			}
			if resp.StatusCode >= 500 {
				return &engineerr.TransportError{Op: op, Err: fmt.Errorf("server error status %d", resp.StatusCode)}
			}

			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return retry.Unrecoverable(fmt.Errorf("oracle: decoding %s response: %w", op, err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.DelayType(retry.BackOffDelay),
	)
}
