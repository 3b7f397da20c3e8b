package connection

import (
	"context"
	"errors"
	"time"

	pool "github.com/jolestar/go-commons-pool/v2"
)

// Pool is a bounded pool of Clients to one server.
type Pool struct {
	objects *pool.ObjectPool
}

type clientFactory struct {
	addr    string
	timeout time.Duration
}

func (f *clientFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	c, err := Dial(f.addr, f.timeout)
	if err != nil {
		return nil, err
	}
	return pool.NewPooledObject(c), nil
}

func (f *clientFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	c, ok := object.Object.(*Client)
	if !ok {
		return errors.New("pooled object is not a client")
	}
	return c.Close()
}

func (f *clientFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	c, ok := object.Object.(*Client)
	return ok && c.Ping() == nil
}

func (f *clientFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (f *clientFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

// NewPool creates a pool holding at most size clients.
func NewPool(ctx context.Context, addr string, size int, timeout time.Duration) *Pool {
	if size < 1 {
		size = 1
	}
	cfg := pool.NewDefaultPoolConfig()
	cfg.MaxTotal = size
	cfg.MaxIdle = size
	cfg.TestOnBorrow = false
	return &Pool{
		objects: pool.NewObjectPool(ctx, &clientFactory{addr: addr, timeout: timeout}, cfg),
	}
}

// Get borrows a client.
func (p *Pool) Get(ctx context.Context) (*Client, error) {
	raw, err := p.objects.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := raw.(*Client)
	if !ok {
		return nil, errors.New("pool returned a non-client object")
	}
	return c, nil
}

// Put returns a client. A client whose last call failed should be
// discarded with Discard instead.
func (p *Pool) Put(ctx context.Context, c *Client) error {
	return p.objects.ReturnObject(ctx, c)
}

// Discard removes a broken client from the pool.
func (p *Pool) Discard(ctx context.Context, c *Client) error {
	return p.objects.InvalidateObject(ctx, c)
}

// Active returns the number of borrowed clients.
func (p *Pool) Active() int {
	return p.objects.GetNumActive()
}

// Close destroys idle clients and rejects further borrows.
func (p *Pool) Close(ctx context.Context) {
	p.objects.Close(ctx)
}
