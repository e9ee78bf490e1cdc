package model

type Room struct {
	ID              string `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string `json:"name" bson:"name"`
	Campus          string `json:"campus" bson:"campus"`
	Capacity        int    `json:"capacity" bson:"capacity"`
	ComputerCount   int    `json:"computer_count" bson:"computer_count"`
	ProjectorCount  int    `json:"projector_count" bson:"projector_count"`
	WhiteboardCount int    `json:"whiteboard_count" bson:"whiteboard_count"`
	DusterCount     int    `json:"duster_count" bson:"duster_count"`
	MarkerCount     int    `json:"marker_count" bson:"marker_count"`
	SpeakerCount    int    `json:"speaker_count" bson:"speaker_count"`
}

// RoomFilter narrows room listings; zero values mean "no constraint".
type RoomFilter struct {
	Campus         string
	MinCapacity    int
	MinComputers   int
	MinProjectors  int
	MinWhiteboards int
	MinSpeakers    int
}
