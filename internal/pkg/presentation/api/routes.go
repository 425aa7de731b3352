package api

import (
	"github.com/diwise/zaken-api/internal/pkg/application"
	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
)

const HealthRoute = "health"

var routeTable = []struct {
	name    string
	pattern string
}{
	{application.ZaakList, "/zaken/api/v1/zaken"},
	{application.ZaakDetail, "/zaken/api/v1/zaken/{uuid}"},
	{application.RolList, "/zaken/api/v1/rollen"},
	{application.RolDetail, "/zaken/api/v1/rollen/{uuid}"},
	{application.ZaakEigenschapList, "/zaken/api/v1/zaken/{zaak_uuid}/zaakeigenschappen"},
	{application.ZaakEigenschapDetail, "/zaken/api/v1/zaken/{zaak_uuid}/zaakeigenschappen/{uuid}"},
	{application.StatusDetail, "/zaken/api/v1/statussen/{uuid}"},
	{application.ResultaatDetail, "/zaken/api/v1/resultaten/{uuid}"},
	{application.ZaakObjectDetail, "/zaken/api/v1/zaakobjecten/{uuid}"},
	{application.ZaakInformatieObjectDetail, "/zaken/api/v1/zaakinformatieobjecten/{uuid}"},
	{application.ZaakTypeDetail, "/catalogi/api/v1/zaaktypen/{uuid}"},
	{HealthRoute, "/health"},
}

// NewRoutes returns the route table of the zaken api. The same table is used to
// mount handlers and to resolve hyperlinks between resources.
func NewRoutes() (*hyperlink.Routes, error) {
	routes := hyperlink.NewRoutes()

	for _, r := range routeTable {
		if _, err := routes.Register(r.name, r.pattern); err != nil {
			return nil, err
		}
	}

	return routes, nil
}
