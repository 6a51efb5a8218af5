//go:build js

package webstorage

import (
	"github.com/rs/zerolog/log"

	"github.com/rtctunnel/localstate/ext/js/localstorage"
)

func detect() Storage {
	s, err := localstorage.Open()
	if err != nil {
		log.Debug().Err(err).Msg("[webstorage] localStorage unavailable")
		return nil
	}
	return s
}
