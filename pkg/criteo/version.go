package criteo

// Version is the client library version, stamped into the User-Agent
// header on every request.
const Version = "0.3.1"
