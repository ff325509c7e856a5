package miniapi

import (
	"github.com/minihost/bridgekit/bridge"
)

// HTTP-verb shortcuts for the request operation. These are the only methods
// that touch the options value: they set the method field and fold the
// positional url/data/header arguments into it before delegating. data and
// header may be nil.

func (c *Client) Get(url string, data any, header map[string]any) (*bridge.Promise, error) {
	return c.requestWith("GET", url, data, header)
}

func (c *Client) Post(url string, data any, header map[string]any) (*bridge.Promise, error) {
	return c.requestWith("POST", url, data, header)
}

func (c *Client) Put(url string, data any, header map[string]any) (*bridge.Promise, error) {
	return c.requestWith("PUT", url, data, header)
}

func (c *Client) Delete(url string, data any, header map[string]any) (*bridge.Promise, error) {
	return c.requestWith("DELETE", url, data, header)
}

func (c *Client) requestWith(method, url string, data any, header map[string]any) (*bridge.Promise, error) {
	opts := bridge.Options{
		"method": method,
		"url":    url,
	}
	if data != nil {
		opts["data"] = data
	}
	if header != nil {
		opts["header"] = header
	}
	return c.bridge.Invoke(bridge.OpRequest, opts)
}
