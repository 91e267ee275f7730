package quadtree

import "github.com/sirupsen/logrus"

// Log traces structural changes of every tree in the process. It only reports
// warnings unless the caller lowers its level, e.g.
//
//	quadtree.Log.SetLevel(logrus.DebugLevel)
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

func debugging() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
