// Package minecraft talks to the managed server: systemd stop and start
// for quiescing the world during archiving, the rcon helper script for
// reading the in-game clock, and the server list ping protocol behind
// the status command.
package minecraft
