package i8088

// Plugin is the register/start/step surface a logic-analyzer host uses to
// stream samples to the decoder in realtime (§6.4). Batch mode never needs
// this; it exists for hosts that push one PinState at a time instead of
// handing over a whole capture file.
type Plugin interface {
	// Register is called once before the capture starts, with the decoder
	// instance the host should feed.
	Register(d *Decoder)

	// Start is called when the host begins sampling.
	Start()

	// Step delivers one accepted clock edge and returns the resulting
	// cycle record.
	Step(pins PinState) *Cycle

	// Stop is called when the host finishes sampling.
	Stop()
}

// pluginHost is a minimal Plugin implementation suitable for hosts that
// have no setup/teardown needs beyond feeding the decoder.
type pluginHost struct {
	decoder *Decoder
}

// NewPluginHost returns a Plugin that forwards every Step directly to the
// Decoder given to Register, or to a freshly constructed Decoder when
// Register was never called.
func NewPluginHost() Plugin {
	return &pluginHost{}
}

func (p *pluginHost) Register(d *Decoder) { p.decoder = d }
func (p *pluginHost) Start()              {}
func (p *pluginHost) Stop()                {}

func (p *pluginHost) Step(pins PinState) *Cycle {
	if p.decoder == nil {
		p.decoder = NewDecoder()
	}
	return p.decoder.Feed(pins)
}
