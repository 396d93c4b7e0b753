package web

// pageTemplate is the whole chat UI: sidebar with thread controls, one tab
// per agent, message list, prompt form. Server-rendered, no scripts.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Security Assistant</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; display: flex; height: 100vh; color: #24292f; }
  .sidebar { width: 260px; background: #f6f8fa; border-right: 1px solid #d0d7de; padding: 16px; overflow-y: auto; }
  .sidebar h2 { font-size: 1rem; margin: 0 0 12px; }
  .sidebar form { margin: 0 0 8px; }
  .sidebar button { width: 100%; padding: 6px 8px; border: 1px solid #d0d7de; border-radius: 6px; background: #fff; cursor: pointer; text-align: left; }
  .sidebar button.primary { background: #1f6feb; color: #fff; border-color: #1f6feb; text-align: center; }
  .sidebar button.danger { color: #cf222e; text-align: center; }
  .sidebar .current { font-size: 0.8rem; color: #57606a; margin: 12px 0; word-break: break-all; }
  .main { flex: 1; display: flex; flex-direction: column; }
  .tabs { display: flex; border-bottom: 1px solid #d0d7de; }
  .tabs a { padding: 12px 20px; text-decoration: none; color: #57606a; }
  .tabs a.active { color: #24292f; border-bottom: 2px solid #fd8c73; font-weight: 600; }
  .messages { flex: 1; overflow-y: auto; padding: 20px; }
  .msg { max-width: 70%; margin-bottom: 12px; padding: 10px 14px; border-radius: 10px; white-space: pre-wrap; }
  .msg.user { margin-left: auto; background: #ddf4ff; }
  .msg.assistant { background: #f6f8fa; }
  .msg .who { font-size: 0.7rem; text-transform: uppercase; color: #57606a; margin-bottom: 4px; }
  .empty { color: #57606a; font-style: italic; }
  .composer { display: flex; gap: 8px; padding: 16px; border-top: 1px solid #d0d7de; }
  .composer input[type=text] { flex: 1; padding: 10px; border: 1px solid #d0d7de; border-radius: 6px; }
  .composer button { padding: 10px 20px; border: none; border-radius: 6px; background: #1f6feb; color: #fff; cursor: pointer; }
</style>
</head>
<body>
  <div class="sidebar">
    <h2>Conversation</h2>
    <form method="post" action="/threads/new">
      <input type="hidden" name="tab" value="{{.ActiveTab}}">
      <button class="primary" type="submit">New Chat</button>
    </form>
    <div class="current">Thread: {{.ActiveThread}}<br>User: {{.UserID}}</div>
    <h2>Past Conversations</h2>
    {{if .Threads}}
      {{range .Threads}}
      <form method="post" action="/threads/switch">
        <input type="hidden" name="thread" value="{{.}}">
        <input type="hidden" name="tab" value="{{$.ActiveTab}}">
        <button type="submit">{{.}}</button>
      </form>
      {{end}}
    {{else}}
      <div class="empty">No past conversations found.</div>
    {{end}}
    <form method="post" action="/threads/delete">
      <input type="hidden" name="tab" value="{{.ActiveTab}}">
      <button class="danger" type="submit">Clear Current Thread</button>
    </form>
  </div>
  <div class="main">
    <div class="tabs">
      {{range .Tabs}}
      <a href="/?tab={{.ID}}" {{if .Active}}class="active"{{end}}>{{.Title}}</a>
      {{end}}
    </div>
    {{range .Tabs}}{{if .Active}}
    <div class="messages">
      {{if .Messages}}
        {{range .Messages}}
        <div class="msg {{.Role}}">
          <div class="who">{{.Role}}</div>{{.Content}}
        </div>
        {{end}}
      {{else}}
        <div class="empty">Start the conversation by typing below.</div>
      {{end}}
    </div>
    <form class="composer" method="post" action="/send">
      <input type="hidden" name="tab" value="{{.ID}}">
      <input type="text" name="prompt" placeholder="{{.Placeholder}}" autofocus autocomplete="off">
      <button type="submit">Send</button>
    </form>
    {{end}}{{end}}
  </div>
</body>
</html>
`
