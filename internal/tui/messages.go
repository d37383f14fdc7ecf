package tui

import (
	"github.com/MKhiriev/go-upload-stager/models"
)

// hydratedMsg reports that the defaults were resolved into the buffer.
type hydratedMsg struct {
	seeded bool
}

// filesLoadedMsg carries files read from disk, to be staged through Drop
// when drop is set and through Add otherwise.
type filesLoadedMsg struct {
	files []models.StagedFile
	drop  bool
	err   error
}

type clearToastMsg struct {
	id int
}
