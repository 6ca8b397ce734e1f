package types

import (
	"github.com/cosmos/ibc-tm-lightclient/modules/core/exported"
)

var _ exported.ClientMessage = (*Misbehaviour)(nil)

// Misbehaviour wraps the two conflicting signed headers evidence of double-
// signing or a BFT-time violation is built from. As with Header, its
// verification is out of scope here: update_on_misbehaviour assumes the
// Misbehaviour it is handed has already been validated, and simply commits
// the frozen client state.
type Misbehaviour struct {
	ClientId string                 `json:"client_id" yaml:"client_id"`
	Header1  *Header                `json:"header1" yaml:"header1"`
	Header2  *Header                `json:"header2" yaml:"header2"`
}

// ClientType implements exported.ClientMessage.
func (Misbehaviour) ClientType() string {
	return ModuleName
}

// GetHeight returns the height shared by both conflicting headers.
func (m Misbehaviour) GetHeight() exported.Height {
	return m.Header1.GetHeight()
}
