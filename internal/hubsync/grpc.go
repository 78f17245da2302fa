package hubsync

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"GaltonBoardController/internal/logx"
	"GaltonBoardController/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Server delivers the manual trigger over gRPC: the secondary hub listens
// and the operator fires `galton trigger` instead of pressing a hub button.
// The first Trigger RPC releases the wait; later ones are acknowledged and
// ignored.
type Server struct {
	proto.UnimplementedSyncServer

	log   *logx.Logger
	once  sync.Once
	fired chan struct{}
}

func NewServer(log *logx.Logger) *Server {
	return &Server{log: log, fired: make(chan struct{})}
}

func (s *Server) Trigger(ctx context.Context, req *proto.TriggerRequest) (*proto.TriggerReply, error) {
	s.log.Infof("SYNC/TRIGGER → from=%s note=%q", req.GetSourceId(), req.GetNote())
	s.once.Do(func() { close(s.fired) })
	return &proto.TriggerReply{Accepted: true}, nil
}

// WaitForSignal implements ManualTrigger.
func (s *Server) WaitForSignal(ctx context.Context) error {
	select {
	case <-s.fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start brings up the trigger endpoint and serves in the background.
func Start(addr string, log *logx.Logger) (*grpc.Server, net.Listener, *Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("listen %s: %w", addr, err)
	}
	gs := grpc.NewServer()
	srv := NewServer(log)
	proto.RegisterSyncServer(gs, srv)

	go func() {
		if err := gs.Serve(lis); err != nil {
			log.Errorf("gRPC Serve: %v", err)
		}
	}()

	log.Infof("SYNC/LISTEN → trigger endpoint on %s", addr)
	return gs, lis, srv, nil
}

// Stop shuts down server and listener (idempotent).
func Stop(s *grpc.Server, lis net.Listener, log *logx.Logger) {
	if s != nil {
		s.Stop()
	}
	if lis != nil {
		_ = lis.Close()
	}
	log.Infof("SYNC/STOP → trigger endpoint closed")
}

// Fire dials a secondary's trigger endpoint and fires it once.
func Fire(ctx context.Context, addr, sourceID, note string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	cli := proto.NewSyncClient(conn)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rep, err := cli.Trigger(ctx, &proto.TriggerRequest{SourceId: sourceID, Note: note})
	if err != nil {
		return fmt.Errorf("trigger %s: %w", addr, err)
	}
	if !rep.GetAccepted() {
		return fmt.Errorf("trigger %s: rejected", addr)
	}
	return nil
}
