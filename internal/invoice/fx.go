package invoice

import (
	"go.uber.org/fx"

	"github.com/basssoft/arms/internal/invoice/factory"
	"github.com/basssoft/arms/internal/invoice/repository"
	"github.com/basssoft/arms/internal/invoice/service"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.New),
	fx.Provide(service.New),
	fx.Provide(factory.New),
)
