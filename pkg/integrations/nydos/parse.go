package nydos

import (
	"fmt"

	"github.com/matzehuels/bizreg/pkg/entity"
)

func (c *Client) parseSearch(data *searchResponse) ([]entity.Summary, error) {
	if data.RequestStatus != requestStatusSuccess {
		return nil, fmt.Errorf("%w: %q", ErrRequestStatus, data.RequestStatus)
	}

	results := make([]entity.Summary, 0, len(data.EntitySearchResultList))
	for _, e := range data.EntitySearchResultList {
		id := entity.Clean(e.DosID.String())
		if id == "" {
			c.Logger().Warn("skipping search row without dosID", "name", e.EntityName.String())
			continue
		}
		results = append(results, entity.Summary{
			State:  c.state,
			Name:   entity.Clean(e.EntityName.String()),
			Status: entity.Clean(e.EntityStatus.String()),
			ID:     id,
			URL:    c.EntityURL(id),
		})
	}
	return results, nil
}

func (c *Client) parseDetails(data *detailResponse) *entity.Record {
	info := data.EntityGeneralInfo

	r := entity.NewRecord(c.state)
	r.Name = entity.Clean(info.EntityName.String())
	r.Status = entity.Clean(info.EntityStatus.String())
	r.RegistrationNumber = entity.Clean(info.DosID.String())
	r.DateRegistered = entity.DatePart(info.DateOfInitialDosFiling.String())
	r.InactiveDate = entity.DatePart(info.InactiveDate.String())
	r.EntityType = entity.Clean(info.EntityType.String())
	r.PrincipalAddress = formatAddress(data.POExecAddress.Address)
	r.CEOName = entity.Clean(data.CEO.Name.String())
	r.CEOAddress = formatAddress(data.CEO.Address)
	r.SOPName = entity.Clean(data.SOPAddress.Name.String())
	r.SOPAddress = formatAddress(data.SOPAddress.Address)
	r.AgentName = entity.NullIfEmpty(entity.Clean(data.RegisteredAgent.Name.String()))
	r.AgentAddress = entity.NullIfEmpty(formatAddress(data.RegisteredAgent.Address))
	return r
}

func formatAddress(a address) string {
	return entity.FormatAddress(entity.Address{
		StreetAddress: a.StreetAddress.String(),
		City:          a.City.String(),
		State:         a.State.String(),
		ZipCode:       a.ZipCode.String(),
		Country:       a.Country.String(),
	})
}
