package booking

import (
	"go.uber.org/fx"

	"github.com/basssoft/arms/internal/booking/repository"
	"github.com/basssoft/arms/internal/booking/service"
)

var Module = fx.Module("booking.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
