/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package mcp

import (
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	profileTools "github.com/wso2/professional-profile-service/internal/system/mcp/tools/profile"
)

const (
	serverName    = "professional-profile-service"
	serverVersion = "1.0.0"
)

// server holds dependencies for MCP tool registration.
type server struct {
	tools *profileTools.Tools

	once sync.Once
	mcp  *mcpsdk.Server
}

func newServer(tools *profileTools.Tools) *server {
	return &server{tools: tools}
}

// getMCPServer builds the MCP server once and returns it.
func (s *server) getMCPServer() *mcpsdk.Server {
	s.once.Do(func() {
		mcpServer := mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil)
		s.tools.RegisterTools(mcpServer)
		s.mcp = mcpServer
	})
	return s.mcp
}
