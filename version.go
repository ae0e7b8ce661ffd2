package vectorizer

// Version is the SDK version reported in the default User-Agent.
const Version = "0.1.0"
