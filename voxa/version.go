package voxa

// Version is the library version reported in the User-Agent header.
const Version = "0.2.0"

const userAgent = "voxa-go/" + Version
