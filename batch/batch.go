// Package batch defines the synthesis batch record consumed by the mapper:
// a batch holds actions, and actions carry container data, observations,
// container positions and samples down to the chemical of each sample item.
//
// Optional fields are pointers or nil slices. A nil field means the value was
// absent from the input and produces no triples.
package batch

// Batch is one synthesis run.
type Batch struct {
	BatchID string   `json:"batchID"`
	Actions []Action `json:"actions"`
}

// Action is one step of a batch.
type Action struct {
	ActionName       string `json:"actionName"`
	StartTime        string `json:"startTime"`
	EndingTime       string `json:"endingTime"`
	MethodName       string `json:"methodName"`
	EquipmentName    string `json:"equipmentName"`
	SubEquipmentName string `json:"subEquipmentName"`

	ContainerInfo            *ContainerInfo `json:"containerInfo,omitempty"`
	TemperatureShaker        *Observation   `json:"temperatureShaker,omitempty"`
	TemperatureTumbleStirrer *Observation   `json:"temperatureTumbleStirrer,omitempty"`
	SpeedShaker              *Observation   `json:"speedShaker,omitempty"`
	DispenseType             *string        `json:"dispenseType,omitempty"`
	DispenseState            *string        `json:"dispenseState,omitempty"`

	HasContainerPositionAndQuantity []ContainerPosition `json:"hasContainerPositionAndQuantity,omitempty"`
	HasSample                       *Sample             `json:"hasSample,omitempty"`
}

// Kind returns the action's variant.
func (a Action) Kind() ActionKind {
	return ParseActionKind(a.ActionName)
}

// ContainerInfo identifies a physical container.
type ContainerInfo struct {
	ContainerID      string `json:"containerID"`
	ContainerBarcode string `json:"containerBarcode"`
}

// Observation is a measured quantity: a numeric value with its unit.
type Observation struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// ContainerPosition is a position label with the quantity found there.
type ContainerPosition struct {
	Position string      `json:"position"`
	Quantity Observation `json:"quantity"`
}

// Sample is the vial-level sample of an action. It may hold further sample items.
type Sample struct {
	Container     ContainerInfo `json:"container"`
	ExpectedDatum Observation   `json:"expectedDatum"`
	VialType      string        `json:"vialType"`
	VialID        string        `json:"vialID"`
	Role          string        `json:"role"`
	HasSample     []SampleItem  `json:"hasSample,omitempty"`
}

// SampleItem is one substance inside a sample.
type SampleItem struct {
	SampleID        string       `json:"sampleID"`
	Role            string       `json:"role"`
	PhysicalState   string       `json:"physicalState"`
	InternalBarCode string       `json:"internalBarCode"`
	ExpectedDatum   *Observation `json:"expectedDatum,omitempty"`
	HasChemical     Chemical     `json:"hasChemical"`
}

// Chemical describes the chemical of a sample item.
type Chemical struct {
	ChemicalID    string      `json:"chemicalID"`
	ChemicalName  string      `json:"chemicalName"`
	CASNumber     string      `json:"CASNumber"`
	Smiles        string      `json:"smiles"`
	MolecularMass Observation `json:"molecularMass"`
}
