package model

import (
	"strings"
)

type Scenario string

const (
	SCENARIO_UNKNOWN  Scenario = ""
	SCENARIO_ANCIENT  Scenario = "ANCIENT"
	SCENARIO_CHANCE   Scenario = "CHANCE"
	SCENARIO_ASSAULT  Scenario = "ASSAULT"
	SCENARIO_SCRAMBLE Scenario = "SCRAMBLE"
	SCENARIO_SALVAGE  Scenario = "SALVAGE"
)

func ParseScenario(s string) Scenario {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ANCIENT":
		return SCENARIO_ANCIENT
	case "CHANCE":
		return SCENARIO_CHANCE
	case "ASSAULT":
		return SCENARIO_ASSAULT
	case "SCRAMBLE":
		return SCENARIO_SCRAMBLE
	case "SALVAGE":
		return SCENARIO_SALVAGE
	default:
		return SCENARIO_UNKNOWN
	}
}
