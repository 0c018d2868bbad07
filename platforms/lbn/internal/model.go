package internal

import "github.com/gregkash16/ncx-sub000/model"

// LBNList is the LaunchBayNext export shape: XWS with the pilots nested the
// same way, so the wire model stays small.
type LBNList struct {
	Faction string     `json:"faction"`
	Pilots  []LBNPilot `json:"pilots"`
}

type LBNPilot struct {
	ID   string `json:"id"`
	Ship string `json:"ship"`
	Name string `json:"name"`
}

func (l *LBNList) ToList() *model.ParsedList {
	list := &model.ParsedList{
		Faction: l.Faction,
		Pilots:  make([]model.Pilot, 0, len(l.Pilots)),
	}
	for _, p := range l.Pilots {
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
