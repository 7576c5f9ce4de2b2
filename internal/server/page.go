// internal/server/page.go
package server

// indexHTML is the single-page chat client served at /.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>RuleCraft Chat</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #10141c; color: #e6e9ef; }
    #app { max-width: 640px; margin: 0 auto; padding: 16px; display: flex; flex-direction: column; height: 100vh; box-sizing: border-box; }
    h1 { font-size: 1.1rem; margin: 0 0 12px; }
    #messages { flex: 1; overflow-y: auto; display: flex; flex-direction: column; gap: 8px; }
    .msg { padding: 10px 12px; border-radius: 10px; max-width: 85%; white-space: pre-wrap; }
    .msg.user { background: #294a7a; align-self: flex-end; }
    .msg.bot { background: #1e2633; align-self: flex-start; }
    .meta { font-size: 0.7rem; opacity: 0.6; margin-top: 4px; }
    #composer { display: flex; gap: 8px; padding-top: 12px; }
    #input { flex: 1; padding: 10px; border-radius: 8px; border: 1px solid #2c3648; background: #161c28; color: inherit; }
    #sendBtn { padding: 10px 18px; border-radius: 8px; border: 0; background: #3b6bb4; color: #fff; cursor: pointer; }
  </style>
</head>
<body>
  <div id="app">
    <h1>RuleCraft</h1>
    <div id="messages"></div>
    <div id="composer">
      <input id="input" placeholder="Try: 'weather in Delhi', 'tell me a joke', 'what is AI'" autofocus>
      <button id="sendBtn">Send</button>
    </div>
  </div>
  <script>
    const messagesEl = document.getElementById("messages");
    const inputEl = document.getElementById("input");
    const sendBtn = document.getElementById("sendBtn");

    addBotMessage("Hello! I'm RuleCraft — a rule-based assistant. Try: 'weather in Delhi', 'tell me a joke', 'what is AI'.");

    sendBtn.addEventListener("click", sendMessage);
    inputEl.addEventListener("keydown", (e) => { if (e.key === "Enter") sendMessage(); });

    async function sendMessage() {
      const text = inputEl.value.trim();
      if (!text) return;
      addMessage(text, "user", "You");
      inputEl.value = "";
      try {
        const res = await fetch("/chat", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ message: text })
        });
        const data = await res.json();
        addBotMessage(data.reply || "No response.");
      } catch (err) {
        addBotMessage("Error contacting server. Try again later.");
      }
    }

    function addBotMessage(text) { addMessage(text, "bot", "RuleCraft"); }

    function addMessage(text, cls, who) {
      const div = document.createElement("div");
      div.className = "msg " + cls;
      const body = document.createElement("div");
      body.textContent = text;
      const meta = document.createElement("div");
      meta.className = "meta";
      meta.textContent = who + " • " + new Date().toLocaleTimeString();
      div.appendChild(body);
      div.appendChild(meta);
      messagesEl.appendChild(div);
      messagesEl.scrollTop = messagesEl.scrollHeight;
    }
  </script>
</body>
</html>
`
