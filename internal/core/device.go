package core

// OutputKind selects which device/output list the rc socket is asked for.
type OutputKind string

const (
	OutputAudioDevices OutputKind = "adev"
	OutputAudioModules OutputKind = "aout"
	OutputVideoModules OutputKind = "vout"
)

// Label is a human-readable name for the list.
func (k OutputKind) Label() string {
	switch k {
	case OutputAudioDevices:
		return "audio devices"
	case OutputAudioModules:
		return "audio outputs"
	case OutputVideoModules:
		return "video outputs"
	default:
		return string(k)
	}
}
