package types

import "time"

// NameInfo is the metadata encoded in a recording file name.
type NameInfo struct {
	StationNumber uint32 `json:"station_number"`
	Registrator   string `json:"registrator"`
	Sensor        string `json:"sensor"`
}

// RecordFileInfo summarises a recording for catalogues and listings.
//
// NameInfo is nil when the file name does not follow the station naming
// convention.
type RecordFileInfo struct {
	NameInfo      *NameInfo `json:"name_info,omitempty"`
	StartTime     time.Time `json:"start_time"`
	StopTime      time.Time `json:"stop_time"`
	Path          string    `json:"path"`
	OriginName    string    `json:"origin_name"`
	DiscreteCount int64     `json:"discrete_count"`
	Frequency     uint32    `json:"frequency"`
}
