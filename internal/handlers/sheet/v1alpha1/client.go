package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Client calls the sheet service with the request and response types of
// this package
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes method with req encoded as a Struct and decodes the reply
// into resp when resp is non-nil. Status errors come back as internal
// errors with their codes intact.
func (c *Client) Call(ctx context.Context, method string, req, resp any) error {
	in, err := encodeStruct(req)
	if err != nil {
		return err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return errors.FromGRPCError(err)
	}

	if resp == nil {
		return nil
	}
	data, err := json.Marshal(out.AsMap())
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}
	if err := json.Unmarshal(data, resp); err != nil {
		return errors.Wrap(err, "failed to read response")
	}
	return nil
}

// Raw invokes method and returns the reply as a generic map
func (c *Client) Raw(ctx context.Context, method string, req any) (map[string]any, error) {
	var out map[string]any
	if err := c.Call(ctx, method, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
