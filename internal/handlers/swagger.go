package handlers

// @title Pre-flop Decision API
// @version 1.0
// @description Turns a pre-flop poker spot into a model-backed action recommendation

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name decisions
// @tag.description Pre-flop decision operations
