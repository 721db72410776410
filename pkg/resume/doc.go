// Package resume defines the resume document model shared by every renderer,
// the edit session, and the stores. Lists carry stable string ids which act as
// render keys and as mutation addresses; fields are also reachable through
// path strings such as "achievements.2.title" or "experience[2].bulletPoints[0]".
package resume
