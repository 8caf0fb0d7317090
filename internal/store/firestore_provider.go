package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	defaultFirestoreDialTimeout = 10 * time.Second
	envFirestoreEmulatorHost    = "FIRESTORE_EMULATOR_HOST"
	envGoogleCloudProject       = "GOOGLE_CLOUD_PROJECT"
)

// ErrProviderClosed is returned once a FirestoreProvider has been closed.
var ErrProviderClosed = errors.New("firestore: provider is closed")

// FirestoreOptions configures the Firestore client.
type FirestoreOptions struct {
	ProjectID    string
	EmulatorHost string
	DialTimeout  time.Duration
	ClientOpts   []option.ClientOption
}

// FirestoreProvider lazily creates one shared Firestore client. A failed
// initialisation is retried on the next call.
type FirestoreProvider struct {
	opts FirestoreOptions

	mu     sync.Mutex
	client *firestore.Client
	closed bool
}

// NewFirestoreProvider returns a provider; no connection is made until Client is called.
func NewFirestoreProvider(opts FirestoreOptions) *FirestoreProvider {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultFirestoreDialTimeout
	}
	return &FirestoreProvider{opts: opts}
}

// Client returns the shared client, creating it on first use.
func (p *FirestoreProvider) Client(ctx context.Context) (*firestore.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrProviderClosed
	}
	if p.client != nil {
		return p.client, nil
	}

	client, err := p.createClient(ctx)
	if err != nil {
		return nil, err
	}
	p.client = client
	return client, nil
}

func (p *FirestoreProvider) createClient(ctx context.Context) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, p.opts.DialTimeout)
	defer cancel()

	projectID := strings.TrimSpace(p.opts.ProjectID)
	if projectID == "" {
		projectID = strings.TrimSpace(os.Getenv(envGoogleCloudProject))
	}
	if projectID == "" {
		return nil, errors.New("firestore: project id is required")
	}

	opts := append([]option.ClientOption(nil), p.opts.ClientOpts...)
	if host := p.emulatorHost(); host != "" {
		opts = append(opts,
			option.WithoutAuthentication(),
			option.WithEndpoint(host),
			option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: create client: %w", err)
	}
	return client, nil
}

func (p *FirestoreProvider) emulatorHost() string {
	if host := strings.TrimSpace(p.opts.EmulatorHost); host != "" {
		return host
	}
	return strings.TrimSpace(os.Getenv(envFirestoreEmulatorHost))
}

// Close releases the client. The provider cannot be reused afterwards.
func (p *FirestoreProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}
