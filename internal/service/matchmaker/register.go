package matchmaker

import (
	"google.golang.org/grpc"

	"github.com/NissanXoX/LinkApp/internal/app"
	"github.com/NissanXoX/LinkApp/internal/config"
	pb "github.com/NissanXoX/LinkApp/internal/proto/linkapp"
)

// Registrar ties the Matchmaker service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
	cfg    *config.Config
}

// NewRegistrar creates a new Registrar for the Matchmaker service
func NewRegistrar(appCtx *app.AppContext, cfg *config.Config) *Registrar {
	return &Registrar{appCtx: appCtx, cfg: cfg}
}

// Register attaches the Matchmaker service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewMatchmakerService(r.appCtx, r.cfg)
	pb.RegisterMatchmakerServer(s, service)
}
