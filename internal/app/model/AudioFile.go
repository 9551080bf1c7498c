package model

// AudioFile is a remote object key plus the local copy made for one workflow run.
type AudioFile struct {
	Key       string `json:"key"`
	LocalPath string `json:"local_path"`
}
