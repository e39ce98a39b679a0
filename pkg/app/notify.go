package app

import (
	"go.uber.org/zap"

	"github.com/amarlabs/amar/pkg/profile"
)

// Notifier alerts the guardian when the emergency screen is activated. The
// device build sends an SMS and places a call; this build only logs.
type Notifier interface {
	NotifyEmergency(p profile.Profile)
}

// LogNotifier records the alert in the device log.
type LogNotifier struct {
	Log *zap.Logger
}

func (n *LogNotifier) NotifyEmergency(p profile.Profile) {
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Warn("guardian alert",
		zap.String("guardian", p.GuardianName),
		zap.String("phone", p.GuardianPhone))
}
