package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/nauticalflow/internal/client/client"
)

// Get prints the resource at endpoint.
func (a *App) Get(ctx context.Context, endpoint string) error {
	return a.call(ctx, http.MethodGet, endpoint, nil)
}

// Delete removes the resource at endpoint.
func (a *App) Delete(ctx context.Context, endpoint string) error {
	return a.call(ctx, http.MethodDelete, endpoint, nil)
}

// Send reads a JSON body and sends it with method to endpoint. The guard
// runs before the body is asked for.
func (a *App) Send(ctx context.Context, method, endpoint string) error {
	if !a.guard.Check(ctx) {
		a.printf("Session ended. Please log in again.\n")
		return nil
	}

	body, err := getMultiline(a.reader, "Enter JSON body", a.out)
	if err != nil {
		return err
	}
	return a.call(ctx, method, endpoint, []byte(body))
}

func (a *App) call(ctx context.Context, method, endpoint string, body []byte) error {
	resp, err := a.resources.Call(ctx, method, endpoint, body)
	if err != nil {
		a.report(err)
		return err
	}
	a.printResponse(resp)
	return nil
}

func (a *App) printResponse(resp *client.Response) {
	if resp.Empty() {
		a.printf("%d (no content)\n", resp.Status)
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, resp.Body, "", "  "); err != nil {
		buf.Reset()
		buf.Write(resp.Body)
	}
	a.printf("%s\n", buf.String())
}
