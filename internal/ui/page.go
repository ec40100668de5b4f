package ui

const indexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>LLM Chat</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f4f5f7; color: #1d1f23; }
    header { padding: 12px 20px; background: #20232a; color: #fff; display: flex; justify-content: space-between; }
    header .model { opacity: .7; font-size: 13px; }
    main { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; padding: 16px 20px; }
    textarea { width: 100%; box-sizing: border-box; min-height: 140px; font: inherit; padding: 8px; }
    .row { margin-top: 8px; display: flex; justify-content: flex-end; gap: 8px; align-items: center; }
    button { padding: 8px 20px; font: inherit; cursor: pointer; }
    button:disabled { cursor: progress; opacity: .6; }
    section.history { grid-column: 1 / span 2; }
    table { width: 100%; border-collapse: collapse; background: #fff; }
    th, td { border: 1px solid #d8dbe0; padding: 6px 8px; text-align: left; vertical-align: top; white-space: pre-wrap; }
    th { background: #eceef1; }
    td.id { width: 48px; } td.ts { width: 160px; }
    #status { font-size: 13px; opacity: .7; }
  </style>
</head>
<body>
  <header>
    <div>LLM Chat</div>
    <div class="model">{{.Model}}</div>
  </header>
  <main>
    <section>
      <label for="input">Message</label>
      <textarea id="input" placeholder="Type a message (Ctrl+Enter to send)"></textarea>
      <div class="row">
        <span id="status">Ready.</span>
        <button id="send">Send</button>
      </div>
    </section>
    <section>
      <label for="response">Response</label>
      <textarea id="response" readonly></textarea>
    </section>
    <section class="history">
      <table>
        <thead><tr><th>Id</th><th>Timestamp</th><th>User message</th><th>Bot response</th></tr></thead>
        <tbody id="history"></tbody>
      </table>
    </section>
  </main>
  <script>
    const input = document.getElementById("input");
    const response = document.getElementById("response");
    const sendBtn = document.getElementById("send");
    const statusEl = document.getElementById("status");
    const historyEl = document.getElementById("history");

    function cell(text, cls) {
      const td = document.createElement("td");
      if (cls) td.className = cls;
      td.textContent = text;
      return td;
    }

    function renderHistory(items) {
      historyEl.replaceChildren();
      for (const e of items || []) {
        const tr = document.createElement("tr");
        tr.append(cell(e.id, "id"), cell(e.timestamp, "ts"), cell(e.userMessage), cell(e.botResponse));
        historyEl.append(tr);
      }
    }

    function render(state) {
      input.value = state.input;
      response.value = state.response;
      renderHistory(state.history);
      setBusy(state.state === "sending");
    }

    function setBusy(busy) {
      sendBtn.disabled = busy;
      statusEl.textContent = busy ? "Sending..." : "Ready.";
    }

    async function load() {
      const res = await fetch("/api/state");
      render(await res.json());
    }

    async function send() {
      setBusy(true);
      try {
        const res = await fetch("/api/send", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ message: input.value }),
        });
        const body = await res.json();
        if (!res.ok) {
          if (body.state) render(body.state);
          alert("An error occurred: " + body.error);
          return;
        }
        render(body);
      } catch (err) {
        alert("An error occurred: " + err);
      } finally {
        setBusy(false);
      }
    }

    sendBtn.addEventListener("click", send);
    input.addEventListener("keydown", (ev) => {
      if (ev.key === "Enter" && (ev.ctrlKey || ev.metaKey) && !sendBtn.disabled) send();
    });
    load();
  </script>
</body>
</html>
`
