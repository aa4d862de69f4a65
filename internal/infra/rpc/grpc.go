package rpc

import (
	"context"
	"crypto/tls"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vietddude/keyctl/internal/core/domain"
)

// Full method names of the keymapd RPC surface.
const (
	methodGetStatus          = "/keymapd.KeymapService/GetStatus"
	methodGetKeyboards       = "/keymapd.KeymapService/GetKeyboards"
	methodConnectAnyKeyboard = "/keymapd.KeymapService/ConnectAnyKeyboard"
	methodConnectKeyboard    = "/keymapd.KeymapService/ConnectKeyboard"
	methodDisconnect         = "/keymapd.KeymapService/DisconnectKeyboard"
	methodSetLayer           = "/keymapd.KeymapService/SetLayer"
	methodUnsetLayer         = "/keymapd.KeymapService/UnsetLayer"
	methodSetLed             = "/keymapd.KeymapService/SetRGBLed"
	methodSetAllLeds         = "/keymapd.KeymapService/SetRGBAll"
	methodSetStatusLed       = "/keymapd.KeymapService/SetStatusLed"
	methodIncreaseBrightness = "/keymapd.KeymapService/IncreaseBrightness"
	methodDecreaseBrightness = "/keymapd.KeymapService/DecreaseBrightness"
)

// Wire messages. keymapd replies carry a uniform success flag next to any
// payload; requests mirror the daemon's JSON field names.
type (
	emptyRequest struct{}

	ack struct {
		Success bool `json:"success"`
	}

	keyboardEntry struct {
		ID           int    `json:"id"`
		Path         string `json:"path"`
		FriendlyName string `json:"friendly_name"`
		IsConnected  bool   `json:"is_connected"`
	}

	statusReply struct {
		DaemonVersion     string         `json:"daemon_version"`
		ConnectedKeyboard *keyboardEntry `json:"connected_keyboard,omitempty"`
	}

	keyboardsReply struct {
		Keyboards []keyboardEntry `json:"keyboards"`
	}

	connectRequest struct {
		ID int `json:"id"`
	}

	layerRequest struct {
		Layer int `json:"layer"`
	}

	ledRequest struct {
		Led       int   `json:"led"`
		Red       uint8 `json:"red"`
		Green     uint8 `json:"green"`
		Blue      uint8 `json:"blue"`
		SustainMs int64 `json:"sustain_ms"`
	}

	allLedsRequest struct {
		Red       uint8 `json:"red"`
		Green     uint8 `json:"green"`
		Blue      uint8 `json:"blue"`
		SustainMs int64 `json:"sustain_ms"`
	}

	statusLedRequest struct {
		Led       int   `json:"led"`
		On        bool  `json:"on"`
		SustainMs int64 `json:"sustain_ms"`
	}
)

// GRPCChannel implements Channel over a gRPC connection to keymapd.
// Messages are JSON-encoded via the registered codec, so no generated
// clients are involved; every call goes through Invoke.
type GRPCChannel struct {
	*healthTracker
	endpoint string
	conn     *grpc.ClientConn
}

// NewGRPCChannel dials the daemon and returns a ready channel.
func NewGRPCChannel(ctx context.Context, endpoint string, useTLS bool, dialTimeout time.Duration) (*GRPCChannel, error) {
	// Parse endpoint to determine if TLS is needed
	target := endpoint
	var opts []grpc.DialOption

	if useTLS || strings.HasPrefix(endpoint, "https://") || strings.HasSuffix(endpoint, ":443") {
		creds := credentials.NewTLS(&tls.Config{})
		opts = append(opts, grpc.WithTransportCredentials(creds))
		target = strings.TrimPrefix(target, "https://")
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
		target = strings.TrimPrefix(target, "http://")
	}

	opts = append(opts, grpc.WithBlock()) // Wait for connection

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial keymapd at %s: %w", target, err)
	}

	return &GRPCChannel{
		healthTracker: newHealthTracker(),
		endpoint:      endpoint,
		conn:          conn,
	}, nil
}

// Conn returns the underlying gRPC connection.
func (ch *GRPCChannel) Conn() *grpc.ClientConn {
	return ch.conn
}

// Close cleans up resources.
func (ch *GRPCChannel) Close() error {
	return ch.conn.Close()
}

// invoke is the single choke point for all calls: it stamps a request id,
// selects the JSON codec and records health and metrics.
func (ch *GRPCChannel) invoke(ctx context.Context, method string, req, reply any) error {
	ctx = metadata.AppendToOutgoingContext(ctx, "x-request-id", uuid.NewString())

	start := time.Now()
	err := ch.conn.Invoke(ctx, method, req, reply, grpc.CallContentSubtype(codecName))
	latency := time.Since(start)

	name := path.Base(method)
	rpcCalls.WithLabelValues(name).Inc()
	rpcLatency.WithLabelValues(name).Observe(latency.Seconds())

	if err != nil {
		rpcErrors.WithLabelValues(name, status.Code(err).String()).Inc()
		ch.RecordFailure()
		return err
	}

	ch.RecordSuccess(latency)
	return nil
}

func (ch *GRPCChannel) GetStatus(ctx context.Context) (*domain.Status, error) {
	var reply statusReply
	if err := ch.invoke(ctx, methodGetStatus, emptyRequest{}, &reply); err != nil {
		return nil, err
	}

	st := &domain.Status{DaemonVersion: reply.DaemonVersion}
	if kb := reply.ConnectedKeyboard; kb != nil {
		st.ConnectedKeyboard = &domain.Keyboard{
			ID:           kb.ID,
			Path:         kb.Path,
			FriendlyName: kb.FriendlyName,
			IsConnected:  kb.IsConnected,
		}
	}
	return st, nil
}

func (ch *GRPCChannel) GetKeyboards(ctx context.Context) ([]domain.Keyboard, error) {
	var reply keyboardsReply
	if err := ch.invoke(ctx, methodGetKeyboards, emptyRequest{}, &reply); err != nil {
		return nil, err
	}

	keyboards := make([]domain.Keyboard, 0, len(reply.Keyboards))
	for _, kb := range reply.Keyboards {
		keyboards = append(keyboards, domain.Keyboard{
			ID:           kb.ID,
			Path:         kb.Path,
			FriendlyName: kb.FriendlyName,
			IsConnected:  kb.IsConnected,
		})
	}
	return keyboards, nil
}

func (ch *GRPCChannel) ConnectAnyKeyboard(ctx context.Context) error {
	var reply ack
	return ch.invoke(ctx, methodConnectAnyKeyboard, emptyRequest{}, &reply)
}

func (ch *GRPCChannel) ConnectKeyboard(ctx context.Context, id int) error {
	var reply ack
	return ch.invoke(ctx, methodConnectKeyboard, connectRequest{ID: id}, &reply)
}

func (ch *GRPCChannel) Disconnect(ctx context.Context) error {
	var reply ack
	return ch.invoke(ctx, methodDisconnect, emptyRequest{}, &reply)
}

func (ch *GRPCChannel) SetLayer(ctx context.Context, layer int) error {
	var reply ack
	return ch.invoke(ctx, methodSetLayer, layerRequest{Layer: layer}, &reply)
}

func (ch *GRPCChannel) UnsetLayer(ctx context.Context, layer int) error {
	var reply ack
	return ch.invoke(ctx, methodUnsetLayer, layerRequest{Layer: layer}, &reply)
}

func (ch *GRPCChannel) SetLed(ctx context.Context, led int, color domain.Color, sustain time.Duration) error {
	var reply ack
	req := ledRequest{
		Led:       led,
		Red:       color.Red,
		Green:     color.Green,
		Blue:      color.Blue,
		SustainMs: sustain.Milliseconds(),
	}
	return ch.invoke(ctx, methodSetLed, req, &reply)
}

func (ch *GRPCChannel) SetAllLeds(ctx context.Context, color domain.Color, sustain time.Duration) error {
	var reply ack
	req := allLedsRequest{
		Red:       color.Red,
		Green:     color.Green,
		Blue:      color.Blue,
		SustainMs: sustain.Milliseconds(),
	}
	return ch.invoke(ctx, methodSetAllLeds, req, &reply)
}

func (ch *GRPCChannel) SetStatusLed(ctx context.Context, led int, on bool, sustain time.Duration) error {
	var reply ack
	req := statusLedRequest{
		Led:       led,
		On:        on,
		SustainMs: sustain.Milliseconds(),
	}
	return ch.invoke(ctx, methodSetStatusLed, req, &reply)
}

func (ch *GRPCChannel) IncreaseBrightness(ctx context.Context) (domain.StepResult, error) {
	var reply ack
	if err := ch.invoke(ctx, methodIncreaseBrightness, emptyRequest{}, &reply); err != nil {
		return domain.StepResult{}, err
	}
	return domain.StepResult{Success: reply.Success}, nil
}

func (ch *GRPCChannel) DecreaseBrightness(ctx context.Context) (domain.StepResult, error) {
	var reply ack
	if err := ch.invoke(ctx, methodDecreaseBrightness, emptyRequest{}, &reply); err != nil {
		return domain.StepResult{}, err
	}
	return domain.StepResult{Success: reply.Success}, nil
}
