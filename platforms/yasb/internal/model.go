package internal

import "github.com/gregkash16/ncx-sub000/model"

// XWSSquad is the converter's response, a subset of the XWS 2.0 schema.
type XWSSquad struct {
	Faction string     `json:"faction"`
	Pilots  []XWSPilot `json:"pilots"`
}

type XWSPilot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Ship string `json:"ship"`
}

// ToList converts the wire form into the canonical pilots structure. Older
// XWS payloads use "name" where newer ones use "id"; either works as the
// stable identifier.
func (s *XWSSquad) ToList() *model.ParsedList {
	list := &model.ParsedList{
		Faction: s.Faction,
		Pilots:  make([]model.Pilot, 0, len(s.Pilots)),
	}
	for _, p := range s.Pilots {
		id := p.ID
		if id == "" {
			id = p.Name
		}
		list.Pilots = append(list.Pilots, model.Pilot{
			XWS:  id,
			Ship: p.Ship,
			Name: p.Name,
		})
	}
	return list
}
