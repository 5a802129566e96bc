// Package logger provides slog attribute helpers shared across walletkit
// components. Helpers return empty attributes for zero values, so call sites
// can log unconditionally:
//
//	log.Info("authentication failed",
//		logger.SessionID(sessionID),
//		logger.Method(string(method)),
//		logger.Error(err))
package logger
